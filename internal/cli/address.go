package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

func (a *App) Address(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	address, err := a.service.WalletAddress(email)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Println("Invalid email address")
		} else {
			fmt.Println(err.Error())
		}
		return
	}

	fmt.Printf("Wallet address: %s\n", address)
}
