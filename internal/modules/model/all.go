package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&AuthUser{},
		&Profile{},
		&UserRole{},
		&PasswordResetToken{},
		&Project{},
		&Task{},
		&Note{},
		&FinanceRecord{},
		&Payment{},
	}
}
