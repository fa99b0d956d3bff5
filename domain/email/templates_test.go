package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeEmail(t *testing.T) {
	t.Run("includes the name and referral code", func(t *testing.T) {
		subject, html := WelcomeEmail(WelcomeEmailData{
			Name:         "Ada",
			ReferralCode: "ABC123",
		})

		assert.Equal(t, "You're on the waitlist 🎉", subject)
		assert.Contains(t, html, "Hi Ada,")
		assert.Contains(t, html, "ABC123")
		assert.Contains(t, html, "Welcome aboard")
		assert.Contains(t, html, "<!DOCTYPE html>")
	})

	t.Run("falls back to a generic greeting without a name", func(t *testing.T) {
		_, html := WelcomeEmail(WelcomeEmailData{ReferralCode: "ABC123"})

		assert.Contains(t, html, "Hi there,")
	})

	t.Run("omits the referral block without a code", func(t *testing.T) {
		_, html := WelcomeEmail(WelcomeEmailData{Name: "Ada"})

		assert.NotContains(t, html, "referral code")
	})

	t.Run("escapes markup in user-supplied values", func(t *testing.T) {
		_, html := WelcomeEmail(WelcomeEmailData{Name: "<script>alert(1)</script>"})

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}

func TestUpdateEmail(t *testing.T) {
	t.Run("uses the title as the subject", func(t *testing.T) {
		subject, html := UpdateEmail(UpdateEmailData{
			Name:    "Ada",
			Title:   "Launch week",
			Message: "We are opening the doors next Monday.",
		})

		assert.Equal(t, "Launch week", subject)
		assert.Contains(t, html, "We are opening the doors next Monday.")
	})

	t.Run("defaults the subject when no title is given", func(t *testing.T) {
		subject, _ := UpdateEmail(UpdateEmailData{Message: "Hello"})

		assert.Equal(t, "An update from the team", subject)
	})

	t.Run("renders highlights as a bullet list", func(t *testing.T) {
		_, html := UpdateEmail(UpdateEmailData{
			Message:    "Progress report.",
			Highlights: []string{"Dark mode", "Faster exports"},
		})

		assert.Contains(t, html, "<li>Dark mode</li>")
		assert.Contains(t, html, "<li>Faster exports</li>")
	})

	t.Run("omits the list without highlights", func(t *testing.T) {
		_, html := UpdateEmail(UpdateEmailData{Message: "Progress report."})

		assert.NotContains(t, html, "<ul>")
	})
}

func TestReferralSuccessEmail(t *testing.T) {
	t.Run("names the referred signup when known", func(t *testing.T) {
		subject, html := ReferralSuccessEmail(ReferralSuccessEmailData{
			Name:         "Grace",
			ReferralCode: "GRACE1",
			ReferredName: "Ada",
		})

		assert.Equal(t, "Your referral just paid off", subject)
		assert.Contains(t, html, "Hi Grace,")
		assert.Contains(t, html, "(Ada)")
		assert.Contains(t, html, "GRACE1")
	})

	t.Run("omits the parenthetical without a referred name", func(t *testing.T) {
		_, html := ReferralSuccessEmail(ReferralSuccessEmailData{
			Name:         "Grace",
			ReferralCode: "GRACE1",
		})

		assert.NotContains(t, html, "()")
	})
}
