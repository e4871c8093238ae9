//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"
)

type UserRepository interface {
	RecordLogin(ctx context.Context, email string, at time.Time) error
}
