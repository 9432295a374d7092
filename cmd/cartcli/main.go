// Command cartcli shows the cart of the user owning FOODNODES_API_TOKEN and
// optionally changes it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/nikolayk812/foodnodes/internal/alert"
	"github.com/nikolayk812/foodnodes/internal/api"
	"github.com/nikolayk812/foodnodes/internal/cart"
	"github.com/nikolayk812/foodnodes/internal/cartscreen"
	"github.com/nikolayk812/foodnodes/internal/config"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/httpclient"
	"github.com/nikolayk812/foodnodes/internal/i18n"
	"github.com/nikolayk812/foodnodes/internal/logger"
	"github.com/nikolayk812/foodnodes/internal/pricing"
	"github.com/nikolayk812/foodnodes/internal/state"
)

type options struct {
	update  string
	remove  string
	order   bool
	orders  bool
	refresh bool
}

func main() {
	var opts options
	flag.StringVar(&opts.update, "update", "", "set a line quantity, as <line id>=<quantity>")
	flag.StringVar(&opts.remove, "remove", "", "remove the line with this id")
	flag.BoolVar(&opts.order, "order", false, "send the cart as orders")
	flag.BoolVar(&opts.orders, "orders", false, "list earlier orders")
	flag.BoolVar(&opts.refresh, "refresh", false, "fetch the cart again before changing it")
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("foodnodes-cartcli", cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, opts, log, os.Stdout, os.Stderr); err != nil {
		log.Error("cartcli error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Client, opts options, log *slog.Logger, stdout, stderr io.Writer) error {
	if opts.update != "" {
		if _, _, err := parseUpdate(opts.update); err != nil {
			return err
		}
	}

	transport := httpclient.New(httpclient.Config{
		Name:         "foodnodes-api",
		Timeout:      cfg.HTTPTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryWaitMin: cfg.RetryWaitMin,
		RetryWaitMax: cfg.RetryWaitMax,
		Breaker: httpclient.BreakerConfig{
			MaxRequests:  1,
			Timeout:      cfg.BreakerTimeout,
			FailureRatio: cfg.BreakerFailureRatio,
			MinRequests:  cfg.BreakerMinRequests,
		},
	}, log)

	client, err := api.New(cfg.APIBaseURL, cfg.APIToken, transport, log)
	if err != nil {
		return fmt.Errorf("api.New: %w", err)
	}

	localizer := i18n.New()
	store := state.NewStore(state.State{Lang: localizer.Resolve(cfg.Lang)})

	controller := cartscreen.NewController(store, client, log)
	defer controller.Close()

	stop := context.AfterFunc(ctx, controller.Close)
	defer stop()

	controller.Mount()
	if cfg.APIToken != "" {
		store.Dispatch(state.LoggedIn{User: domain.User{ID: cfg.APIToken, Token: cfg.APIToken}})
	}
	controller.Wait()

	if opts.refresh {
		controller.Sync(true)
		controller.Wait()
	}

	show := func(d alert.Display) {
		fmt.Fprintf(stderr, "[%s] %s\n", d.Title, d.Message)
	}

	// failed API calls raise an alert; rejected changes are reported directly
	created, err := mutate(ctx, controller, opts)
	if err != nil {
		log.DebugContext(ctx, "cart change failed", slog.String("error", err.Error()))
		if api.IsUnauthorized(err) {
			store.Dispatch(state.LoggedOut{})
		}
		if !alert.Present(store, localizer, show) {
			fmt.Fprintln(stderr, err)
		}
	}
	alert.Present(store, localizer, show)

	var history []domain.Order
	if opts.orders && store.Snapshot().Auth.LoggedIn() {
		history, err = client.FetchOrders(ctx)
		switch {
		case api.IsUnauthorized(err):
			store.Dispatch(state.LoggedOut{})
			fmt.Fprintln(stderr, err)
		case err != nil:
			return fmt.Errorf("client.FetchOrders: %w", err)
		}
	}

	snapshot := store.Snapshot()
	if err := cartscreen.Print(stdout, cartscreen.Render(snapshot, localizer, pricing.New())); err != nil {
		return err
	}

	if len(created) > 0 {
		if err := printOrders(stdout, localizer.Translate("order_created", snapshot.Lang), created, localizer, snapshot.Lang); err != nil {
			return err
		}
	}
	if opts.orders && snapshot.Auth.LoggedIn() {
		return printOrders(stdout, localizer.Translate("orders", snapshot.Lang), history, localizer, snapshot.Lang)
	}

	return nil
}

func mutate(ctx context.Context, controller *cartscreen.Controller, opts options) ([]domain.Order, error) {
	switch {
	case opts.update != "":
		id, quantity, err := parseUpdate(opts.update)
		if err != nil {
			return nil, err
		}

		return nil, controller.UpdateItem(ctx, id, quantity)
	case opts.remove != "":
		return nil, controller.RemoveItem(ctx, opts.remove)
	case opts.order:
		return controller.CreateOrder(ctx)
	}

	return nil, nil
}

// printOrders writes one line per order, e.g.
// "3 items at node-1, pickup 12 March 2024".
func printOrders(w io.Writer, title string, orders []domain.Order, l *i18n.Localizer, lang string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n== %s ==\n", title)
	for _, o := range orders {
		date := o.Date.Raw
		if t, err := o.Date.Key().Time(); err == nil {
			date = l.FormatDate(t, lang)
		}

		b.WriteString(l.Format("order_summary", lang, map[string]string{
			"count":     strconv.Itoa(cart.TotalQuantity(o.Items)),
			"node_name": o.NodeID,
			"date":      date,
		}))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}

	return nil
}

func parseUpdate(s string) (string, int, error) {
	id, qty, ok := strings.Cut(s, "=")
	if !ok || id == "" {
		return "", 0, fmt.Errorf("update[%s] is not <id>=<quantity>", s)
	}

	quantity, err := strconv.Atoi(qty)
	if err != nil {
		return "", 0, fmt.Errorf("strconv.Atoi: %w", err)
	}
	if quantity < 0 {
		return "", 0, fmt.Errorf("quantity[%d] is negative", quantity)
	}

	return id, quantity, nil
}
