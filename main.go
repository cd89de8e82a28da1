package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := cli.App{
		Name:  "silent-shard-recovery",
		Usage: "An offline tool to restore wallet private keys from a Silent Shard backup file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:       "backup",
				Aliases:    []string{"b"},
				Usage:      "path to the backup JSON file",
				Required:   true,
				HasBeenSet: false,
				Hidden:     false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "recover",
				Usage: "reconstruct the private keys of every wallet in the backup",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "mnemonic",
						Aliases: []string{"m"},
						Usage:   "recovery phrase (prefer --mnemonic-file or the interactive prompt, this leaks into shell history)",
					},
					&cli.StringFlag{
						Name:  "mnemonic-file",
						Usage: "file containing the recovery phrase",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "file to write the recovered keys to",
						Value:   "recovered-keys.json",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "fail an entry when the recovered key does not match its claimed address",
					},
					&cli.BoolFlag{
						Name:  "continue-on-error",
						Usage: "skip entries that fail instead of aborting the whole recovery",
					},
				},
				Action: recoverCmd,
			},
			{
				Name:   "verify",
				Usage:  "check the backup integrity hash without recovering anything",
				Action: verifyCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func recoverCmd(c *cli.Context) error {
	backup, err := GetBackupFromFile(c.String("backup"))
	if err != nil {
		return err
	}
	mnemonic, err := readMnemonic(c)
	if err != nil {
		return err
	}

	service := NewRecoveryService(c.Bool("strict"), c.Bool("continue-on-error"))
	keys, err := service.Recover(mnemonic, backup)
	if err != nil {
		return err
	}

	output := c.String("output")
	if err := WriteExportedKeys(output, keys); err != nil {
		return err
	}
	fmt.Printf("Recovered %d of %d wallet(s), keys written to %s\n", len(keys), len(backup.Wallet), output)
	return nil
}

func verifyCmd(c *cli.Context) error {
	backup, err := GetBackupFromFile(c.String("backup"))
	if err != nil {
		return err
	}
	ok, err := VerifyChecksum(backup.Raw())
	if err != nil {
		return err
	}
	if !ok {
		return ErrChecksumMismatch
	}
	fmt.Printf("Backup checksum OK, %d wallet(s)\n", len(backup.Wallet))
	return nil
}

func readMnemonic(c *cli.Context) (string, error) {
	if m := c.String("mnemonic"); m != "" {
		return m, nil
	}
	if file := c.String("mnemonic-file"); file != "" {
		buf, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("fail to read from file %s: %w", file, err)
		}
		return strings.TrimSpace(string(buf)), nil
	}
	fmt.Fprint(os.Stderr, "Enter recovery phrase: ")
	phrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("fail to read recovery phrase: %w", err)
	}
	return string(phrase), nil
}
