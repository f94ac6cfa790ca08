// Package clip wraps the system clipboard as a capability-checked
// optional dependency. A missing provider is a normal condition; every
// caller degrades to a status message.
package clip

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("system clipboard is not available")

type Provider struct {
	available bool
}

func New() *Provider {
	return &Provider{available: !clipboard.Unsupported}
}

func (p *Provider) Available() bool {
	return p.available
}

func (p *Provider) Get() (string, error) {
	if !p.available {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

func (p *Provider) Set(text string) error {
	if !p.available {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}
