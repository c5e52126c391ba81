// Package chart loads a chart of accounts from YAML and seeds it into the
// account registry.
package chart

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/dto"
)

// Node is one account in the chart file. Children inherit Type when they omit it.
type Node struct {
	Code     string             `yaml:"code"`
	Name     string             `yaml:"name"`
	Type     domain.AccountType `yaml:"type,omitempty"`
	Children []Node             `yaml:"children,omitempty"`
}

// Chart is the top-level chart_of_accounts.yaml document.
type Chart struct {
	Accounts []Node `yaml:"accounts"`
}

// Load reads and validates a chart file from disk.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a chart document.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing chart: %w", err)
	}
	seen := make(map[string]struct{})
	for i := range c.Accounts {
		if err := normalize(&c.Accounts[i], "", seen); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func normalize(n *Node, inherited domain.AccountType, seen map[string]struct{}) error {
	n.Code = strings.TrimSpace(n.Code)
	n.Name = strings.TrimSpace(n.Name)
	if n.Code == "" || n.Name == "" {
		return fmt.Errorf("chart account %q: code and name are required", n.Code)
	}
	if _, dup := seen[n.Code]; dup {
		return fmt.Errorf("chart account %s: duplicate code", n.Code)
	}
	seen[n.Code] = struct{}{}

	if n.Type == "" {
		n.Type = inherited
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("chart account %s: invalid type %q", n.Code, n.Type)
	}
	for i := range n.Children {
		if err := normalize(&n.Children[i], n.Type, seen); err != nil {
			return err
		}
	}
	return nil
}

// Result counts what a seed run did.
type Result struct {
	Created  int
	Existing int
}

// Seed creates every account of the chart that is not already registered,
// parents before children. Existing codes are left untouched, so the run can
// be repeated safely.
func Seed(ctx context.Context, accounts portssvc.AccountSvcFacade, c *Chart) (Result, error) {
	var res Result

	current, err := accounts.ListAccounts(ctx)
	if err != nil {
		return res, fmt.Errorf("listing accounts: %w", err)
	}
	byCode := make(map[string]string, len(current))
	for _, a := range current {
		byCode[a.Code] = a.AccountID
	}

	var walk func(nodes []Node, parentID string) error
	walk = func(nodes []Node, parentID string) error {
		for _, n := range nodes {
			id, ok := byCode[n.Code]
			if ok {
				res.Existing++
			} else {
				req := dto.CreateAccountRequest{Code: n.Code, Name: n.Name, AccountType: n.Type}
				if parentID != "" {
					parent := parentID
					req.ParentAccountID = &parent
				}
				created, err := accounts.CreateAccount(ctx, req)
				if err != nil {
					return fmt.Errorf("creating account %s: %w", n.Code, err)
				}
				id = created.AccountID
				byCode[n.Code] = id
				res.Created++
			}
			if err := walk(n.Children, id); err != nil {
				return err
			}
		}
		return nil
	}

	return res, walk(c.Accounts, "")
}
