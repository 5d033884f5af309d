package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RecordStore описание одного стора из stores.yaml. Порядок записей в
// файле задаёт приоритет резолва.
type RecordStore struct {
	Name   string      `yaml:"name"`
	DSN    string      `yaml:"dsn"`
	Logo   string      `yaml:"logo"`
	Naming StoreNaming `yaml:"naming"`
}

// StoreNaming оверрайды имён таблиц и колонок для легаси-сторов.
// Пустые поля остаются на дефолтах репозитория.
type StoreNaming struct {
	UsersTable     string `yaml:"users_table"`
	ShipmentsTable string `yaml:"shipments_table"`
	UserIDColumn   string `yaml:"user_id_column"`
	FullNameColumn string `yaml:"full_name_column"`
	EmailColumn    string `yaml:"email_column"`
	TrackingColumn string `yaml:"tracking_column"`
}

type storesFile struct {
	Stores []RecordStore `yaml:"stores"`
}

func LoadStores(path string) ([]RecordStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stores file: %w", err)
	}

	var parsed storesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse stores file %s: %w", path, err)
	}

	if len(parsed.Stores) == 0 {
		return nil, fmt.Errorf("stores file %s defines no stores", path)
	}

	seen := make(map[string]struct{}, len(parsed.Stores))
	for i, store := range parsed.Stores {
		if store.Name == "" {
			return nil, fmt.Errorf("stores file %s: store %d has no name", path, i+1)
		}
		if store.DSN == "" {
			return nil, fmt.Errorf("stores file %s: store %q has no dsn", path, store.Name)
		}
		if _, dup := seen[store.Name]; dup {
			return nil, fmt.Errorf("stores file %s: duplicate store name %q", path, store.Name)
		}
		seen[store.Name] = struct{}{}
	}

	return parsed.Stores, nil
}
