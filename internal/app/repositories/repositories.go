package repositories

import (
	"time"

	"github.com/rs/zerolog"
)

// Repositories holds all the repository instances
type Repositories struct {
	ResultRepository *ResultRepository
}

// NewRepositories initializes all repositories
func NewRepositories(resultTTL time.Duration, maxResults int, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		ResultRepository: NewResultRepository(resultTTL, maxResults, lgr),
	}
}
