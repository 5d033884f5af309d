package identity

import (
	"invoicer/internal/entities"
)

func ToDomain(model *IdentityDB, tag string) *entities.CustomerIdentity {
	if model == nil {
		return nil
	}

	identity := &entities.CustomerIdentity{
		SourceTag: tag,
	}
	if model.FullName != nil {
		identity.FullName = *model.FullName
	}
	if model.Email != nil {
		identity.Email = *model.Email
	}
	return identity
}
