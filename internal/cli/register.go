package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	ownerKey, address, err := a.service.Register(ctx, userName, string(password), email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			fmt.Println("Invalid email address")
		case errors.Is(err, common.ErrorAlreadyExists):
			fmt.Println("User name is already taken")
		default:
			fmt.Println(err.Error())
		}
		return
	}

	fmt.Println("Success!")
	fmt.Printf("Owner key:      %s\n", ownerKey)
	fmt.Printf("Wallet address: %s\n", address)
}
