package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elysianestates/crm-api/internal/entity"
)

func TestSwitchRoleRedirectsFromAdminOnlyView(t *testing.T) {
	sess := New()
	assert.NoError(t, sess.SetActiveView(ViewPipeline))

	_, err := sess.SwitchRole(entity.RoleMarketing)
	assert.NoError(t, err)

	snapshot := sess.Snapshot()
	assert.Equal(t, DefaultView, snapshot.ActiveView)
	assert.Equal(t, entity.RoleMarketing, snapshot.User.Role)
}

func TestSwitchRoleKeepsSharedView(t *testing.T) {
	sess := New()
	assert.NoError(t, sess.SetActiveView(ViewProperties))

	_, err := sess.SwitchRole(entity.RoleMarketing)
	assert.NoError(t, err)

	assert.Equal(t, ViewProperties, sess.Snapshot().ActiveView)
}

func TestSwitchRoleReplacesIdentityAtomically(t *testing.T) {
	sess := New()
	assert.Equal(t, "Alexander Sterling", sess.CurrentUser().Name)

	user, err := sess.SwitchRole(entity.RoleMarketing)
	assert.NoError(t, err)
	assert.Equal(t, "Sarah Marketing", user.Name)
	assert.Equal(t, entity.RoleMarketing, user.Role)

	user, err = sess.SwitchRole(entity.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, "Alexander Sterling", user.Name)

	_, err = sess.SwitchRole(entity.Role("intern"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestSetActiveViewEnforcesAllowList(t *testing.T) {
	sess := New()
	_, err := sess.SwitchRole(entity.RoleMarketing)
	assert.NoError(t, err)

	assert.ErrorIs(t, sess.SetActiveView(ViewSales), ErrViewForbidden)
	assert.ErrorIs(t, sess.SetActiveView(View("wine-cellar")), ErrInvalidView)
	assert.NoError(t, sess.SetActiveView(ViewLeads))
}

func TestAllowedViewsPerRole(t *testing.T) {
	assert.Equal(t,
		[]View{ViewDashboard, ViewPipeline, ViewLeads, ViewProperties, ViewSales, ViewAI},
		AllowedViews(entity.RoleAdmin),
	)
	assert.Equal(t,
		[]View{ViewDashboard, ViewLeads, ViewProperties},
		AllowedViews(entity.RoleMarketing),
	)
}

func TestSelectLeadClearsAIBuffers(t *testing.T) {
	sess := New()
	sess.SelectLead("L1")
	assert.True(t, sess.ApplyInsight("L1", "profile analysis"))
	assert.True(t, sess.ApplyOutreachDraft("L1", "Dear Mr. Malhotra..."))

	sess.SelectLead("L2")

	snapshot := sess.Snapshot()
	assert.Equal(t, "L2", snapshot.SelectedLeadID)
	assert.Empty(t, snapshot.Insight)
	assert.Empty(t, snapshot.OutreachDraft)
	assert.Equal(t, ViewLeads, snapshot.ActiveView)
}

func TestLateResponseForDeselectedLeadIsDiscarded(t *testing.T) {
	sess := New()
	sess.SelectLead("L1")
	sess.SelectLead("L2")

	assert.False(t, sess.ApplyInsight("L1", "stale"))
	assert.Empty(t, sess.Snapshot().Insight)
	assert.Empty(t, sess.OutreachDraft("L1"))
}

func TestAIRequestsAreSingleFlight(t *testing.T) {
	sess := New()

	assert.True(t, sess.TryBeginAI())
	assert.False(t, sess.TryBeginAI())
	sess.EndAI()
	assert.True(t, sess.TryBeginAI())
}
