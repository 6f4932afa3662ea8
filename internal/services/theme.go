package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
)

const DefaultColor = "bg-white"

// Colors is the palette a vendor may pick for listing cards.
var Colors = []string{"bg-white", "bg-pink-100", "bg-yellow-100", "bg-blue-100", "bg-green-100"}

// Theme stores the card colour token raw under "cakeColor".
type Theme struct {
	store kv.Store
}

func NewTheme(store kv.Store) *Theme {
	return &Theme{store: store}
}

func (t *Theme) Color(ctx context.Context) (string, error) {
	v, err := t.store.Get(ctx, keyColor)
	if err != nil {
		return "", fmt.Errorf("load card color: %w", err)
	}
	if !slices.Contains(Colors, string(v)) {
		return DefaultColor, nil
	}
	return string(v), nil
}

func (t *Theme) SetColor(ctx context.Context, token string) error {
	if !slices.Contains(Colors, token) {
		return fmt.Errorf("%w: %q", common.ErrUnknownColor, token)
	}
	return t.store.Put(ctx, keyColor, []byte(token))
}
