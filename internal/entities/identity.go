package entities

// CustomerIdentity владелец отправления, найденный по трекинг-номеру.
// SourceTag имя стора, который дал ответ.
type CustomerIdentity struct {
	FullName  string
	Email     string
	SourceTag string
}

func (c *CustomerIdentity) Empty() bool {
	return c == nil || c.FullName == ""
}
