package access

import "context"

// Guard is consulted before every admin operation.
type Guard struct {
	sessions *Sessions
}

func NewGuard(sessions *Sessions) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) IsAuthorized(ctx context.Context, sess Session) bool {
	return g.sessions.Live(ctx, sess)
}

// Require returns ErrForbidden unless the session is authorized.
func (g *Guard) Require(ctx context.Context, sess Session) error {
	if !g.IsAuthorized(ctx, sess) {
		return ErrForbidden
	}
	return nil
}
