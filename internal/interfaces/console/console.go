package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	accountapp "github.com/eshop/backend/internal/application/account"
	catalogapp "github.com/eshop/backend/internal/application/catalog"
	orderapp "github.com/eshop/backend/internal/application/order"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// Console drives the interactive menu loop on a terminal
// All business rules live in the application services; this layer only
// reads input, dispatches and formats output
type Console struct {
	accounts   *accountapp.Service
	products   *catalogapp.ProductService
	categories *catalogapp.CategoryService
	carts      *orderapp.CartService
	in         *bufio.Scanner
	out        io.Writer
	logger     *zap.Logger
}

// New creates a Console reading from in and writing to out
func New(
	accounts *accountapp.Service,
	products *catalogapp.ProductService,
	categories *catalogapp.CategoryService,
	carts *orderapp.CartService,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Console {
	return &Console{
		accounts:   accounts,
		products:   products,
		categories: categories,
		carts:      carts,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
	}
}

// Run shows the entry menu until the user quits or input ends
func (c *Console) Run(ctx context.Context) error {
	c.printf("=== Boutique en ligne ===\n")

	for {
		c.printf("\n1) Log in\n2) Register\n3) Browse as guest\n0) Quit\n")
		choice, ok := c.prompt("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.login(ctx)
		case "2":
			c.register(ctx)
		case "3":
			c.listProducts(ctx)
			c.listCategories(ctx)
		case "0":
			c.printf("Goodbye.\n")
			return nil
		default:
			c.printf("Unknown choice %q\n", choice)
		}
	}
}

func (c *Console) login(ctx context.Context) {
	email, ok := c.prompt("Email: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Password: ")
	if !ok {
		return
	}

	acc, err := c.accounts.Login(ctx, email, password)
	if err != nil {
		c.printf("Login failed: %v\n", err)
		return
	}

	c.printf("Welcome, %s!\n", acc.FullName())
	if acc.IsAdmin() {
		c.adminMenu(ctx, acc)
	} else {
		c.userMenu(ctx, acc)
	}
}

func (c *Console) register(ctx context.Context) {
	lastName, ok := c.prompt("Last name: ")
	if !ok {
		return
	}
	firstName, ok := c.prompt("First name: ")
	if !ok {
		return
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Password: ")
	if !ok {
		return
	}

	acc, err := c.accounts.Register(ctx, lastName, firstName, email, password)
	if err != nil {
		c.printf("Registration failed: %v\n", err)
		return
	}

	c.printf("Account created for %s (%s).\n", acc.FullName(), acc.Email)
}

// prompt prints a label and reads one trimmed line
// ok is false when the input stream is exhausted
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptInt64 keeps asking until it reads a valid integer or input ends
func (c *Console) promptInt64(label string) (int64, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.printf("Not a number: %q\n", raw)
			continue
		}
		return value, true
	}
}

// promptInt keeps asking until it reads a valid integer or input ends
func (c *Console) promptInt(label string) (int, bool) {
	value, ok := c.promptInt64(label)
	return int(value), ok
}

// promptPrice keeps asking until it reads a valid amount or input ends
func (c *Console) promptPrice(label string) (valueobject.Money, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return valueobject.ZeroEUR(), false
		}
		price, err := valueobject.NewMoneyEURFromString(raw)
		if err != nil {
			c.printf("Not a valid amount: %q\n", raw)
			continue
		}
		return price, true
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
