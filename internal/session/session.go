package session

import (
	"errors"
	"sync"

	"github.com/elysianestates/crm-api/internal/entity"
)

var (
	ErrViewForbidden = errors.New("view not permitted for current role")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidView   = errors.New("invalid view")
)

// Operator identities per role. The original deployment is a single-desk
// console, so the role switch swaps the whole user record atomically.
var roleIdentities = map[entity.Role]entity.User{
	entity.RoleAdmin:     {ID: "u1", Name: "Alexander Sterling", Role: entity.RoleAdmin},
	entity.RoleMarketing: {ID: "u1", Name: "Sarah Marketing", Role: entity.RoleMarketing},
}

// Session owns all mutable console state: the current operator, the active
// view, the selected lead and the AI response buffers. Every mutation funnels
// through a named method under the mutex; handlers never touch fields.
type Session struct {
	mu sync.Mutex

	currentUser    entity.User
	activeView     View
	selectedLeadID string

	insight       string
	outreachDraft string
	aiBusy        bool
}

// Snapshot is a read view of the session handed to the HTTP layer.
type Snapshot struct {
	User           entity.User `json:"user"`
	ActiveView     View        `json:"active_view"`
	AllowedViews   []View      `json:"allowed_views"`
	SelectedLeadID string      `json:"selected_lead_id,omitempty"`
	Insight        string      `json:"insight,omitempty"`
	OutreachDraft  string      `json:"outreach_draft,omitempty"`
	AIBusy         bool        `json:"ai_busy"`
}

func New() *Session {
	return &Session{
		currentUser: roleIdentities[entity.RoleAdmin],
		activeView:  DefaultView,
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		User:           s.currentUser,
		ActiveView:     s.activeView,
		AllowedViews:   AllowedViews(s.currentUser.Role),
		SelectedLeadID: s.selectedLeadID,
		Insight:        s.insight,
		OutreachDraft:  s.outreachDraft,
		AIBusy:         s.aiBusy,
	}
}

func (s *Session) CurrentUser() entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// SwitchRole replaces the operator record and, when the active view is not
// permitted for the new role, redirects to the default view. This is a
// UI-state invariant, not a security boundary.
func (s *Session) SwitchRole(role entity.Role) (entity.User, error) {
	identity, ok := roleIdentities[role]
	if !ok {
		return entity.User{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = identity
	if !s.activeView.Allows(role) {
		s.activeView = DefaultView
	}
	return s.currentUser, nil
}

func (s *Session) SetActiveView(view View) error {
	if !view.Valid() {
		return ErrInvalidView
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !view.Allows(s.currentUser.Role) {
		return ErrViewForbidden
	}
	s.activeView = view
	return nil
}

// SelectLead switches the console to the given lead and clears the AI
// buffers, which belong to the previous selection.
func (s *Session) SelectLead(leadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedLeadID = leadID
	s.activeView = ViewLeads
	s.insight = ""
	s.outreachDraft = ""
}

func (s *Session) SelectedLeadID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLeadID
}

// TryBeginAI flips the in-flight flag. It returns false when a request is
// already pending; callers must reject the duplicate instead of queueing.
func (s *Session) TryBeginAI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aiBusy {
		return false
	}
	s.aiBusy = true
	return true
}

func (s *Session) EndAI() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiBusy = false
}

// ApplyInsight stores a completed insight only if its originating lead is
// still the selected one. A late response for a since-deselected lead is
// discarded, reported by the return value.
func (s *Session) ApplyInsight(leadID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedLeadID != leadID {
		return false
	}
	s.insight = text
	return true
}

// ApplyOutreachDraft mirrors ApplyInsight for the outreach buffer.
func (s *Session) ApplyOutreachDraft(leadID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedLeadID != leadID {
		return false
	}
	s.outreachDraft = text
	return true
}

// OutreachDraft returns the buffered draft for the given lead, empty when the
// selection has moved on.
func (s *Session) OutreachDraft(leadID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedLeadID != leadID {
		return ""
	}
	return s.outreachDraft
}
