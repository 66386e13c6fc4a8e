// Package layout models user-editable document layouts: an ordered list of
// toggleable content blocks plus a paging mode. Layouts round-trip through
// JSON for persistence as user presets.
package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// BlockType is the closed set of content block kinds.
type BlockType string

const (
	BlockCover          BlockType = "cover"
	BlockToc            BlockType = "toc"
	BlockPhoto          BlockType = "photo"
	BlockDescription    BlockType = "description"
	BlockRecommendation BlockType = "recommendation"
	BlockPlus           BlockType = "plus"
	BlockMinus          BlockType = "minus"
	BlockGallery        BlockType = "gallery"
	BlockMap            BlockType = "map"
	BlockQR             BlockType = "qr"
	BlockSpacer         BlockType = "spacer"
)

// BlockTypes lists every valid block type in display order.
func BlockTypes() []BlockType {
	return []BlockType{
		BlockCover, BlockToc, BlockPhoto, BlockDescription, BlockRecommendation,
		BlockPlus, BlockMinus, BlockGallery, BlockMap, BlockQR, BlockSpacer,
	}
}

// Valid reports whether t is a known block type.
func (t BlockType) Valid() bool {
	switch t {
	case BlockCover, BlockToc, BlockPhoto, BlockDescription, BlockRecommendation,
		BlockPlus, BlockMinus, BlockGallery, BlockMap, BlockQR, BlockSpacer:
		return true
	}
	return false
}

// PageBreak is a per-block paging hint, meaningful in flow mode.
type PageBreak string

const (
	BreakAuto   PageBreak = "auto"
	BreakAlways PageBreak = "always"
	BreakAvoid  PageBreak = "avoid"
)

// Mode controls how blocks map to pages.
type Mode string

const (
	// ModeFlow packs blocks onto continuous pages, honoring each block's
	// own PageBreak hint.
	ModeFlow Mode = "flow"
	// ModePagePerBlock starts a fresh page for every enabled block.
	ModePagePerBlock Mode = "page-per-block"
)

// Block is one orderable, toggleable unit of document content.
type Block struct {
	ID        string         `json:"id"`
	Type      BlockType      `json:"type"`
	Order     int            `json:"order"`
	Enabled   bool           `json:"enabled"`
	PageBreak PageBreak      `json:"pageBreak,omitempty"`
	Config    map[string]any `json:"config,omitempty"`
}

// NewBlock creates an enabled block of the given type.
func NewBlock(t BlockType, order int) Block {
	return Block{
		ID:      uuid.NewString(),
		Type:    t,
		Order:   order,
		Enabled: true,
	}
}

// EffectiveBreak resolves the block's page-break policy under mode.
func (b Block) EffectiveBreak(mode Mode) PageBreak {
	if mode == ModePagePerBlock {
		return BreakAlways
	}
	if b.PageBreak == "" {
		return BreakAuto
	}
	return b.PageBreak
}

// Layout bundles an ordered block list with a paging mode. Named presets are
// immutable; user layouts derived from them carry their own timestamps.
type Layout struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mode      Mode      `json:"layoutMode"`
	Blocks    []Block   `json:"blocks"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// EnabledBlocks returns the enabled blocks sorted by Order. The sort is
// stable: equal orders keep their original array positions. The receiver's
// block slice is not reordered.
func (l Layout) EnabledBlocks() []Block {
	out := make([]Block, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		if b.Enabled {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Validate checks the layout for unknown block types and an unknown mode.
func (l Layout) Validate() error {
	switch l.Mode {
	case ModeFlow, ModePagePerBlock:
	default:
		return fmt.Errorf("unknown layout mode %q", l.Mode)
	}
	for _, b := range l.Blocks {
		if !b.Type.Valid() {
			return fmt.Errorf("block %s: unknown type %q", b.ID, b.Type)
		}
		switch b.PageBreak {
		case "", BreakAuto, BreakAlways, BreakAvoid:
		default:
			return fmt.Errorf("block %s: unknown page break %q", b.ID, b.PageBreak)
		}
	}
	return nil
}

// Clone deep-copies the layout so edits to the copy never reach the
// original. The clone gets a fresh ID and timestamps.
func (l Layout) Clone(name string) Layout {
	now := time.Now()
	clone := Layout{
		ID:        uuid.NewString(),
		Name:      name,
		Mode:      l.Mode,
		Blocks:    make([]Block, len(l.Blocks)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, b := range l.Blocks {
		nb := b
		if b.Config != nil {
			nb.Config = make(map[string]any, len(b.Config))
			for k, v := range b.Config {
				nb.Config[k] = v
			}
		}
		clone.Blocks[i] = nb
	}
	return clone
}

// DefaultLayouts returns the built-in presets. Callers wanting to edit one
// must Clone it first.
func DefaultLayouts() []Layout {
	return []Layout{
		{
			ID:   "full-book",
			Name: "Полная книга",
			Mode: ModeFlow,
			Blocks: []Block{
				{ID: "full-cover", Type: BlockCover, Order: 1, Enabled: true, PageBreak: BreakAlways},
				{ID: "full-toc", Type: BlockToc, Order: 2, Enabled: true, PageBreak: BreakAlways},
				{ID: "full-photo", Type: BlockPhoto, Order: 3, Enabled: true, PageBreak: BreakAlways},
				{ID: "full-description", Type: BlockDescription, Order: 4, Enabled: true},
				{ID: "full-gallery", Type: BlockGallery, Order: 5, Enabled: true, PageBreak: BreakAlways},
				{ID: "full-recommendation", Type: BlockRecommendation, Order: 6, Enabled: true},
				{ID: "full-plus", Type: BlockPlus, Order: 7, Enabled: true, PageBreak: BreakAvoid},
				{ID: "full-minus", Type: BlockMinus, Order: 8, Enabled: true, PageBreak: BreakAvoid},
				{ID: "full-map", Type: BlockMap, Order: 9, Enabled: true, PageBreak: BreakAlways},
				{ID: "full-qr", Type: BlockQR, Order: 10, Enabled: true},
			},
		},
		{
			ID:   "photo-album",
			Name: "Фотоальбом",
			Mode: ModePagePerBlock,
			Blocks: []Block{
				{ID: "album-cover", Type: BlockCover, Order: 1, Enabled: true},
				{ID: "album-photo", Type: BlockPhoto, Order: 2, Enabled: true},
				{ID: "album-gallery", Type: BlockGallery, Order: 3, Enabled: true},
			},
		},
		{
			ID:   "compact",
			Name: "Компактный",
			Mode: ModeFlow,
			Blocks: []Block{
				{ID: "compact-cover", Type: BlockCover, Order: 1, Enabled: true, PageBreak: BreakAlways},
				{ID: "compact-description", Type: BlockDescription, Order: 2, Enabled: true},
				{ID: "compact-gallery", Type: BlockGallery, Order: 3, Enabled: true},
				{ID: "compact-map", Type: BlockMap, Order: 4, Enabled: false},
			},
		},
	}
}

// DefaultLayout returns the preset registered under id, or false when no
// such preset exists.
func DefaultLayout(id string) (Layout, bool) {
	for _, l := range DefaultLayouts() {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
