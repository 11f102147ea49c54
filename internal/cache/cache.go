package cache

import (
	"context"
	"fmt"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
)

// ProfileCache keeps customer profile screen state between requests of the same session
type ProfileCache interface {
	FindByID(ctx context.Context, session string, customerID model.ID) (*model.ProfileState, error)
	Cache(ctx context.Context, session string, customerID model.ID, state *model.ProfileState) error
	EvictByID(ctx context.Context, session string, customerID model.ID) error
}

func profileKey(session string, customerID model.ID) string {
	return fmt.Sprintf("profile:%s:%s", session, customerID)
}
