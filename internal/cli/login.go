package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
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

	if err := a.service.Login(ctx, userName, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Println("Unknown user name")
		case errors.Is(err, common.ErrorAuthentication):
			fmt.Println("Wrong password")
		default:
			fmt.Println(err.Error())
		}
		return
	}

	a.userName = userName
	fmt.Println("Success!")
}
