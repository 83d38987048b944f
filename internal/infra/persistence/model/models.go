package model

// All lists every persisted model in dependency order, for schema migration and code generation.
func All() []any {
	return []any{
		&TenantModel{},
		&LocationModel{},
		&LoyaltySettingsModel{},
		&StaffGrantModel{},
		&CustomerModel{},
		&StampEventModel{},
		&RewardEventModel{},
		&ActivityModel{},
	}
}
