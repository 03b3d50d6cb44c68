package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cheaguirre/nexuscards/internal/common"
	"github.com/cheaguirre/nexuscards/internal/services"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Register prompts for a username, a password and a security question, and
// attempts to create a new collector account.
//
// Password policy violations are listed one per line so the user can fix
// them all at once. On success it prints a confirmation and returns nil;
// the account is created signed out, so the user still has to log in.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if violations := services.ValidatePassword(string(password)); len(violations) > 0 {
		fmt.Fprintln(a.out, "Password rejected:")
		for _, v := range violations {
			fmt.Fprintln(a.out, "  -", v)
		}
		return nil
	}

	questionCode, err := a.chooseSecurityQuestion()
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Your answer", a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Register(ctx, username, string(password), questionCode, answer); err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			fmt.Fprintln(a.out, "That username is already taken.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and tries to sign in as a collector.
//
// An unknown username and a wrong password produce the same message, so the
// prompt does not reveal which usernames exist. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accounts.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid username or password.")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Welcome back,", username+"!")
	return nil
}

// LoginAdministrator signs in with the administrator credential configured
// for this installation. Failures get the same generic message as collector
// logins.
func (a *App) LoginAdministrator(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Administrator username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Administrator password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accounts.LoginAdministrator(ctx, username, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid username or password.")
			return nil
		}
		a.log.Error(ctx, "administrator login failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Signed in as administrator.")
	return nil
}

// ResetPassword walks the forgot-password flow: look up the account's
// security question, verify the answer, and set a new password. The flow
// does not sign the user in.
func (a *App) ResetPassword(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	questionCode, err := a.accounts.SecurityQuestion(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			fmt.Fprintln(a.out, "No such account.")
			return nil
		}
		return err
	}

	question, ok := securityQuestions[questionCode]
	if !ok {
		question = questionCode
	}

	answer, err := getSimpleText(a.reader, question, a.out)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if violations := services.ValidatePassword(string(newPassword)); len(violations) > 0 {
		fmt.Fprintln(a.out, "Password rejected:")
		for _, v := range violations {
			fmt.Fprintln(a.out, "  -", v)
		}
		return nil
	}

	if err := a.accounts.ResetPassword(ctx, username, answer, string(newPassword)); err != nil {
		if errors.Is(err, common.ErrInvalidSecurityAnswer) {
			fmt.Fprintln(a.out, "That answer does not match.")
			return nil
		}
		a.log.Error(ctx, "password reset failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Password updated. Use 'login' to sign in.")
	return nil
}

// Logout clears the persisted session and returns to the signed-out prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// chooseSecurityQuestion lists the available questions and reads the user's
// pick. Entering a known code directly also works.
func (a *App) chooseSecurityQuestion() (string, error) {
	fmt.Fprintln(a.out, "Pick a security question:")
	for _, code := range securityQuestionCodes {
		fmt.Fprintf(a.out, "  %s: %s\n", code, securityQuestions[code])
	}

	for {
		code, err := getSimpleText(a.reader, "Question code", a.out)
		if err != nil {
			return "", err
		}
		if _, ok := securityQuestions[code]; ok {
			return code, nil
		}
		fmt.Fprintln(a.out, "Unknown question code:", code)
	}
}
