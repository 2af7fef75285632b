package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository reads subscription rows. The metrics engine treats the
// subscription store as read-only.
type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Subscription, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Subscription, error)
}
