package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

// Client delivers ops alerts. Delivery problems are logged, never returned,
// so an unreachable bot cannot fail the job that raised the alert.
type Client interface {
	SendAlert(title, details string)
}
