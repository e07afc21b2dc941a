package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/cryptox"
)

// OpenVault prompts for the user secret, re-derives the vault key using
// the persisted salt, and binds the vault for the rest of the session.
// Reusing the stored salt is what lets this run decrypt tokens produced
// by earlier runs.
func (a *App) OpenVault(ctx context.Context) {

	secret, err := GetPassword("Enter vault secret", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(secret)

	salt, err := a.keys.GetOrCreateSalt()
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	key := cryptox.DeriveVaultKey(secret, salt)
	defer common.WipeByteArray(key)

	vault, err := cryptox.NewVault(key)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	a.vault = vault
	fmt.Println("Vault is open")
}

func (a *App) Encrypt(ctx context.Context) {

	if !a.isVaultOpen() {
		fmt.Println("Open the vault first ('open')")
		return
	}

	plaintext, err := GetSimpleText(a.reader, "Enter text to encrypt", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	token, err := a.vault.Encrypt(plaintext)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Token: %s\n", token)
}

func (a *App) Decrypt(ctx context.Context) {

	if !a.isVaultOpen() {
		fmt.Println("Open the vault first ('open')")
		return
	}

	token, err := GetSimpleText(a.reader, "Enter token", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	plaintext, err := a.vault.Decrypt(token)
	if err != nil {
		if errors.Is(err, common.ErrorAuthentication) {
			fmt.Println("Token is invalid or was produced under a different secret")
		} else {
			fmt.Println(err.Error())
		}
		return
	}

	fmt.Printf("Text: %s\n", plaintext)
}
