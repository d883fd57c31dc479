package domain

import "time"

// TransferRecord describes how an existing hub auth was last converted
// into harness credentials. Method is StrategyJWT or StrategyAuthURL.
type TransferRecord struct {
	Username   string
	Method     AuthStrategy
	CapturedAt time.Time
}
