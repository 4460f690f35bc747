package mock

import (
	"context"

	"github.com/jgrzelak/sitecrawl"
)

var _ sitecrawl.ProfileProvider = (*ProfileProvider)(nil)

// ProfileProvider is a mock implementation of sitecrawl.ProfileProvider.
// Nil function fields behave as no-ops so tests only stub what they assert.
type ProfileProvider struct {
	SessionProfileFn  func() sitecrawl.SessionProfile
	RenderProfileFn   func() sitecrawl.RenderProfile
	MarkProxyFailedFn func(endpoint string)
	DelayFn           func(ctx context.Context) error
}

func (p *ProfileProvider) SessionProfile() sitecrawl.SessionProfile {
	if p.SessionProfileFn == nil {
		return sitecrawl.SessionProfile{}
	}
	return p.SessionProfileFn()
}

func (p *ProfileProvider) RenderProfile() sitecrawl.RenderProfile {
	if p.RenderProfileFn == nil {
		return sitecrawl.RenderProfile{}
	}
	return p.RenderProfileFn()
}

func (p *ProfileProvider) MarkProxyFailed(endpoint string) {
	if p.MarkProxyFailedFn != nil {
		p.MarkProxyFailedFn(endpoint)
	}
}

func (p *ProfileProvider) Delay(ctx context.Context) error {
	if p.DelayFn == nil {
		return ctx.Err()
	}
	return p.DelayFn(ctx)
}
