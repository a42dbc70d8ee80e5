package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker tells the auth middleware whether a session token from the
// X-MARATHON-TOKEN header belongs to a logged in coach.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}
