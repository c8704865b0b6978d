package routes

import (
	"e-disposisi/config"
	"e-disposisi/internal/storage"
)

// Deps carries what the route setups need besides the database handle.
type Deps struct {
	JWT   config.JWTConfig
	Vocab *config.Vocabulary
	Store storage.AttachmentStore
}
