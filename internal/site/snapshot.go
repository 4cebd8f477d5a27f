package site

import (
	"maps"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/showcase"
)

// Snapshot is a render target that keeps the resulting page state in memory
// instead of sending it anywhere. The static build and the first paint of a
// served page render from it.
type Snapshot struct {
	sections     map[content.Kind]*SectionData
	shown        content.Kind
	Fragment     string
	Conversation *showcase.Conversation
	Scene        demo.Scene
}

// NewSnapshot returns an empty snapshot showing the initial demo scene.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		sections: map[content.Kind]*SectionData{
			content.KindFAQ:     {Kind: content.KindFAQ, Hidden: map[string]bool{}},
			content.KindCommand: {Kind: content.KindCommand, Hidden: map[string]bool{}},
		},
		Scene: demo.InitialScene(),
	}
}

func (s *Snapshot) section(kind content.Kind) SectionData {
	sd := *s.sections[kind]
	sd.Hidden = maps.Clone(sd.Hidden)
	sd.Shown = kind == s.shown
	return sd
}

// Shown returns the detail displayed in the visible tab, if any.
func (s *Snapshot) Shown() *browser.Detail {
	if sd, ok := s.sections[s.shown]; ok {
		return sd.Detail
	}
	return nil
}

func (s *Snapshot) RenderList(kind content.Kind, items []browser.ListItem) {
	sd := s.sections[kind]
	sd.Items = items
	sd.Hidden = map[string]bool{}
	sd.Active = ""
	sd.Placeholder = ""
}

func (s *Snapshot) RenderDetail(kind content.Kind, d browser.Detail) {
	s.sections[kind].Detail = &d
}

func (s *Snapshot) SetActive(kind content.Kind, id string) {
	s.sections[kind].Active = id
}

func (s *Snapshot) SetHidden(kind content.Kind, id string, hidden bool) {
	s.sections[kind].Hidden[id] = hidden
}

func (s *Snapshot) ShowPlaceholder(kind content.Kind, text string) {
	s.sections[kind].Placeholder = text
}

func (s *Snapshot) RemovePlaceholder(kind content.Kind) {
	s.sections[kind].Placeholder = ""
}

// ScrollIntoView is meaningless for a static page.
func (s *Snapshot) ScrollIntoView(content.Kind) {}

func (s *Snapshot) ShowSection(kind content.Kind) {
	s.shown = kind
}

func (s *Snapshot) PushFragment(fragment string) {
	s.Fragment = fragment
}

func (s *Snapshot) RenderDemo(scene demo.Scene) {
	s.Scene = scene
}

func (s *Snapshot) RenderConversation(c showcase.Conversation) {
	s.Conversation = &c
}
