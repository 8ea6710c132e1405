// Package pages contains page objects for the OrangeHRM demo site, the
// example consumer of the harness. Page objects compose harness.Page and
// harness.Element into domain actions; they hold selectors and flows, never
// engine details.
package pages

import (
	"github.com/ternarybob/arbor"

	"github.com/entrhq/pilot/pkg/harness"
)

// Selectors for the OrangeHRM login and signup flows.
const (
	UsernameInput   = "input[name='username']"
	PasswordInput   = "input[name='password']"
	LoginButton     = "button[type='submit']"
	LoginError      = "div.oxd-alert-content-text"
	DashboardHeader = "h6.oxd-text.oxd-text--h6.oxd-topbar-header-title"
	SignupLink      = "a[href*='register']"
	SignupUsername  = "input[name='reg_username']"
	SignupEmail     = "input[name='reg_email']"
	SignupPassword  = "input[name='reg_password']"
	SignupSubmit    = "button[type='submit']"
	SignupSuccess   = "div.signup-success"
)

// OrangeHRM is the page object for the demo site.
type OrangeHRM struct {
	page   *harness.Page
	logger arbor.ILogger
}

// New builds the page object over an already-created page.
func New(page *harness.Page, logger arbor.ILogger) *OrangeHRM {
	return &OrangeHRM{page: page, logger: logger}
}

// Page exposes the underlying page wrapper for ad-hoc operations in tests.
func (o *OrangeHRM) Page() *harness.Page {
	return o.page
}

// Open navigates to the site's login page.
func (o *OrangeHRM) Open(baseURL string) error {
	return o.page.Goto(baseURL)
}

// Login fills the credential form and submits it.
func (o *OrangeHRM) Login(username, password string) error {
	user, err := o.page.Find(UsernameInput)
	if err != nil {
		return err
	}
	if err := user.Fill(username); err != nil {
		return err
	}

	pass, err := o.page.Find(PasswordInput)
	if err != nil {
		return err
	}
	if err := pass.Fill(password); err != nil {
		return err
	}

	submit, err := o.page.Find(LoginButton)
	if err != nil {
		return err
	}
	if err := submit.Click(); err != nil {
		return err
	}

	o.logger.Info().Str("username", username).Msg("Attempted login")
	return nil
}

// AssertLoginSuccess soft-asserts that the dashboard header became visible.
// Waiting for the header is a hard failure; its visibility check is soft.
func (o *OrangeHRM) AssertLoginSuccess() error {
	if err := o.page.WaitForSelector(DashboardHeader); err != nil {
		return err
	}
	header, err := o.page.Find(DashboardHeader)
	if err != nil {
		return err
	}
	visible, err := header.IsVisible()
	if err != nil {
		return err
	}
	o.page.Checks().True(visible, "dashboard header should be visible after login")
	return nil
}

// AssertLoginFailure soft-asserts that the login error message became
// visible.
func (o *OrangeHRM) AssertLoginFailure() error {
	if err := o.page.WaitForSelector(LoginError); err != nil {
		return err
	}
	alert, err := o.page.Find(LoginError)
	if err != nil {
		return err
	}
	visible, err := alert.IsVisible()
	if err != nil {
		return err
	}
	o.page.Checks().True(visible, "login error message should be visible after failed login")
	return nil
}

// GoToSignup follows the signup link and waits for the register URL.
func (o *OrangeHRM) GoToSignup() error {
	link, err := o.page.Find(SignupLink)
	if err != nil {
		return err
	}
	if err := link.Click(); err != nil {
		return err
	}
	return o.page.WaitForURL("**/register")
}

// Signup fills the registration form and submits it.
func (o *OrangeHRM) Signup(username, email, password string) error {
	fields := []struct {
		selector string
		value    string
	}{
		{SignupUsername, username},
		{SignupEmail, email},
		{SignupPassword, password},
	}
	for _, field := range fields {
		el, err := o.page.Find(field.selector)
		if err != nil {
			return err
		}
		if err := el.Fill(field.value); err != nil {
			return err
		}
	}

	submit, err := o.page.Find(SignupSubmit)
	if err != nil {
		return err
	}
	if err := submit.Click(); err != nil {
		return err
	}
	o.logger.Info().Str("username", username).Str("email", email).Msg("Attempted signup")
	return nil
}

// AssertSignupSuccess soft-asserts that the signup success message became
// visible.
func (o *OrangeHRM) AssertSignupSuccess() error {
	if err := o.page.WaitForSelector(SignupSuccess); err != nil {
		return err
	}
	success, err := o.page.Find(SignupSuccess)
	if err != nil {
		return err
	}
	visible, err := success.IsVisible()
	if err != nil {
		return err
	}
	o.page.Checks().True(visible, "signup success message should be visible")
	return nil
}
