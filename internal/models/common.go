// internal/models/common.go
package models

// Enums
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCashier UserRole = "cashier"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleCashier
}

type ChartType string

const (
	ChartTypeBar  ChartType = "bar"
	ChartTypePie  ChartType = "pie"
	ChartTypeLine ChartType = "line"
)

func (t ChartType) Valid() bool {
	switch t {
	case ChartTypeBar, ChartTypePie, ChartTypeLine:
		return true
	}
	return false
}
