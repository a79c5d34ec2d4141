package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"cardgames/internal/config"
	"cardgames/pkg/registry"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var command = flag.String("c", "list", "specifies the command (user, list)")

func main() {
	flag.Parse()

	store, closeStore, err := registry.Open(config.Instance())
	if err != nil {
		logrus.WithError(err).Fatal("could not open the user registry")
	}

	switch *command {
	case "user":
		for {
			username, err := getInput("Username (empty to stop)")
			if err != nil || username == "" {
				break
			}

			if err := store.AddUser(username); err != nil {
				if errors.Is(err, registry.ErrUserAlreadyExists) || errors.Is(err, registry.ErrInvalidUsername) {
					_, _ = fmt.Fprintln(os.Stderr, err)
					continue
				}

				logrus.WithError(err).Fatal("could not add user")
			}

			fmt.Printf("Added user %s\n", username)
		}

	case "list":
		users, err := store.Users()
		if err != nil {
			logrus.WithError(err).Fatal("could not list users")
		}

		if err := yaml.NewEncoder(os.Stdout).Encode(users); err != nil {
			logrus.WithError(err).Fatal("could not write users")
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}

	if err := closeStore(); err != nil {
		logrus.WithError(err).Fatal("could not save the user registry")
	}
}

var reader = bufio.NewReader(os.Stdin)

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	str, err := reader.ReadString('\n')
	if err != nil && str == "" {
		return "", err
	}

	return strings.TrimSpace(str), nil
}
