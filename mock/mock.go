// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../dbsession_iface.go -destination mock_dbsession/mock_dbsession_iface.go
//go:generate mockgen -source ../sweeper/sweeper_iface.go -destination mock_sweeper/mock_sweeper_iface.go
//go:generate mockgen -source ../sessionstorage/sessionstorage_iface.go -destination ../sessionstorage/mock/mock_sessionstorage/mock_sessionstorage_iface.go
