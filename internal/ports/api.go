package ports

import (
	"context"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/model"
)

// SummitsAPI is the read side of the climbing-log API used by the page handlers.
// Every call forwards the visitor's session cookie value.
type SummitsAPI interface {
	Summits(ctx context.Context, session string) (*model.SummitsTable, error)
	Summit(ctx context.Context, session, ridgeID, summitID string) (*model.Summit, error)
	SummitClimbs(ctx context.Context, session, ridgeID, summitID string, page int) (*model.SummitClimbs, error)
	Top(ctx context.Context, session string, page int) (*model.Top, error)
	User(ctx context.Context, session string, userID int64) (*domainauth.User, error)
	UserClimbs(ctx context.Context, session string, userID int64) ([]model.UserClimb, error)
}
