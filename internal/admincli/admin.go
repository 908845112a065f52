package admincli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsroom/internal/server/auth"
	"github.com/dmitrijs2005/newsroom/internal/server/services"
)

func (a *App) createAdmin(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Repeat password: ")
	if err != nil {
		return err
	}
	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}

	db, err := openDB(ctx, a.config)
	if err != nil {
		return err
	}
	defer db.Close()

	tokens := auth.NewTokenService([]byte(a.config.SecretKey), a.config.AccessTokenValidityDuration)
	us := services.NewUserService(db, newRepoManager(), tokens, auth.NewBcryptHasher(a.config.BcryptCost))

	user, err := us.CreateAdmin(ctx, username, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Admin %s created (id=%d)\n", user.UserName, user.ID)
	return nil
}
