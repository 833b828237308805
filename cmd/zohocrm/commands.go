package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/audit"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/config"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"github.com/spf13/cobra"
)

const truncatedSuffix = "\n[truncated]\n"

type lister func(ctx context.Context, crm zoho.CRM, params zoho.PageParams) (interface{}, error)

type getter func(ctx context.Context, crm zoho.CRM, id string) (interface{}, error)

type searcher func(ctx context.Context, crm zoho.CRM, params zoho.SearchParams) (interface{}, error)

var listers = map[string]lister{
	"contacts": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListContacts(ctx, p)
	},
	"companies": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListCompanies(ctx, p)
	},
	"deals": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListDeals(ctx, p)
	},
	"leads": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListLeads(ctx, p)
	},
	"products": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListProducts(ctx, p)
	},
	"quotes": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListQuotes(ctx, p)
	},
	"sales-orders": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListSalesOrders(ctx, p)
	},
	"purchase-orders": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListPurchaseOrders(ctx, p)
	},
	"invoices": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListInvoices(ctx, p)
	},
	"vendors": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListVendors(ctx, p)
	},
	"price-books": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListPriceBooks(ctx, p)
	},
	"campaigns": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListCampaigns(ctx, p)
	},
	"cases": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListCases(ctx, p)
	},
	"solutions": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListSolutions(ctx, p)
	},
	"events": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListEvents(ctx, p)
	},
	"notes": func(ctx context.Context, c zoho.CRM, p zoho.PageParams) (interface{}, error) {
		return c.ListNotes(ctx, p)
	},
}

var getters = map[string]getter{
	"contacts": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetContact(ctx, id)
	},
	"companies": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetCompany(ctx, id)
	},
	"deals": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetDeal(ctx, id)
	},
	"leads": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetLead(ctx, id)
	},
	"products": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetProduct(ctx, id)
	},
	"quotes": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetQuote(ctx, id)
	},
	"sales-orders": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetSalesOrder(ctx, id)
	},
	"purchase-orders": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetPurchaseOrder(ctx, id)
	},
	"invoices": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetInvoice(ctx, id)
	},
	"vendors": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetVendor(ctx, id)
	},
	"price-books": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetPriceBook(ctx, id)
	},
	"campaigns": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetCampaign(ctx, id)
	},
	"cases": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetCase(ctx, id)
	},
	"solutions": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetSolution(ctx, id)
	},
	"events": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetEvent(ctx, id)
	},
	"notes": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetNote(ctx, id)
	},
	"users": func(ctx context.Context, c zoho.CRM, id string) (interface{}, error) {
		return c.GetUser(ctx, id)
	},
}

var searchers = map[string]searcher{
	"contacts": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchContacts(ctx, p)
	},
	"leads": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchLeads(ctx, p)
	},
	"products": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchProducts(ctx, p)
	},
	"quotes": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchQuotes(ctx, p)
	},
	"invoices": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchInvoices(ctx, p)
	},
	"vendors": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchVendors(ctx, p)
	},
	"campaigns": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchCampaigns(ctx, p)
	},
	"cases": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchCases(ctx, p)
	},
	"solutions": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchSolutions(ctx, p)
	},
	"events": func(ctx context.Context, c zoho.CRM, p zoho.SearchParams) (interface{}, error) {
		return c.SearchEvents(ctx, p)
	},
}

func kinds[V any](m map[string]V) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// cli holds what every command needs. store is nil when the audit trail is
// disabled or unreachable. crm is built by connect before the first command
// that talks to the CRM.
type cli struct {
	crm     zoho.CRM
	connect func() (zoho.CRM, error)
	cfg     *config.Config
	store   *audit.PostgresStore
}

// offline marks commands that run without CRM credentials.
const offline = "offline"

func (c *cli) ensureClient(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[offline] == "true" || cmd.Name() == "help" || c.crm != nil {
		return nil
	}
	if c.connect == nil {
		return fmt.Errorf("no CRM client configured")
	}
	crm, err := c.connect()
	if err != nil {
		return err
	}
	c.crm = crm
	return nil
}

type pageFlags struct {
	limit  int
	offset int
	cursor string
}

func (f *pageFlags) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "page size")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "records to skip")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "cursor from a previous page")
}

func (c *cli) params(f *pageFlags) zoho.PageParams {
	return zoho.PageParams{Limit: c.cfg.ClampLimit(f.limit), Offset: f.offset, Cursor: f.cursor}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:               "zohocrm",
		Short:             "Zoho CRM command line client",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.ensureClient,
	}

	root.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Check the connection and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.print(cmd, c.crm.TestConnection(cmd.Context()))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.GetCurrentUser(cmd.Context()))
		},
	})
	root.AddCommand(c.newListCmd(), c.newGetCmd(), c.newSearchCmd(), c.newActivitiesCmd())
	root.AddCommand(&cobra.Command{
		Use:   "coql <query>",
		Short: "Run a COQL select query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.ExecuteCOQL(cmd.Context(), strings.Join(args, " ")))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "modules",
		Short: "List CRM modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.ListModules(cmd.Context()))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "fields <module>",
		Short: "List the fields of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.ListFields(cmd.Context(), args[0]))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "pipelines",
		Short: "List deal pipelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.ListPipelines(cmd.Context()))
		},
	})
	root.AddCommand(c.newAuditCmd())
	return root
}

func (c *cli) newListCmd() *cobra.Command {
	var f pageFlags
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of a kind (" + kinds(listers) + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := listers[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q; kinds: %s", args[0], kinds(listers))
			}
			return c.result(cmd)(fn(cmd.Context(), c.crm, c.params(&f)))
		},
	}
	f.register(cmd, c.cfg.DefaultPageSize)
	return cmd
}

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <id>",
		Short: "Fetch one record (" + kinds(getters) + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := getters[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q; kinds: %s", args[0], kinds(getters))
			}
			return c.result(cmd)(fn(cmd.Context(), c.crm, args[1]))
		},
	}
}

func (c *cli) newSearchCmd() *cobra.Command {
	var (
		f     pageFlags
		query string
	)
	cmd := &cobra.Command{
		Use:   "search <kind>",
		Short: "Search records of a kind (" + kinds(searchers) + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := searchers[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q; kinds: %s", args[0], kinds(searchers))
			}
			return c.result(cmd)(fn(cmd.Context(), c.crm, zoho.SearchParams{PageParams: c.params(&f), Query: query}))
		},
	}
	f.register(cmd, c.cfg.DefaultPageSize)
	cmd.Flags().StringVarP(&query, "query", "q", "", "search word")
	return cmd
}

func (c *cli) newActivitiesCmd() *cobra.Command {
	var (
		f      pageFlags
		record string
	)
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List tasks, calls and meetings merged by creation time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.result(cmd)(c.crm.ListActivities(cmd.Context(), zoho.ActivityParams{
				PageParams: c.params(&f),
				RecordID:   record,
			}))
		},
	}
	f.register(cmd, c.cfg.DefaultPageSize)
	cmd.Flags().StringVar(&record, "record", "", "only activities linked to this record id")
	return cmd
}

func (c *cli) newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "audit <session-id>",
		Short:       "Show the recorded calls of a client session",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.store == nil {
				return fmt.Errorf("audit trail is not available; set AUDIT_ENABLED and AUDIT_DB_*")
			}
			sessionID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %w", err)
			}
			return c.result(cmd)(c.store.ListSession(cmd.Context(), sessionID, c.cfg.MaxPageSize))
		},
	}
}

// result adapts a (value, error) pair to a printed command result.
func (c *cli) result(cmd *cobra.Command) func(v interface{}, err error) error {
	return func(v interface{}, err error) error {
		if err != nil {
			return err
		}
		return c.print(cmd, v)
	}
}

func (c *cli) print(cmd *cobra.Command, v interface{}) error {
	return printJSON(cmd.OutOrStdout(), c.cfg.CharacterLimit, v)
}

// printJSON writes v as indented JSON, cut at limit characters.
func printJSON(w io.Writer, limit int, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	text := string(data) + "\n"
	if runes := []rune(text); len(runes) > limit {
		text = string(runes[:limit]) + truncatedSuffix
	}
	_, err = io.WriteString(w, text)
	return err
}
