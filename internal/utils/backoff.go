package utils

import (
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// ConnectBackoff is the retry policy for reaching the database at boot:
// exponential, giving up after 5 seconds.
func ConnectBackoff() backoff.BackOff {
	boff := backoff.NewExponentialBackOff()
	boff.MaxElapsedTime = 5 * time.Second

	return boff
}
