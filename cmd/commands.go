package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davidbz/chefgenius/internal/client"
	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/http"
	"github.com/davidbz/chefgenius/internal/observability"
)

const defaultServerURL = "http://localhost:8080"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "chefgenius",
		Short:         "Recipe service that caches generated recipes",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(), newResolveCommand(), newFetchCommand())

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP recipe service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newResolveCommand() *cobra.Command {
	var restrictions []string

	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a recipe in-process and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "), restrictions)
		},
	}
	cmd.Flags().StringArrayVarP(&restrictions, "restriction", "r", nil, "dietary restriction (repeatable, order matters)")

	return cmd
}

func newFetchCommand() *cobra.Command {
	var (
		restrictions []string
		serverURL    string
	)

	cmd := &cobra.Command{
		Use:   "fetch <query>",
		Short: "Fetch a recipe from a running service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.New(serverURL).GetRecipe(cmd.Context(), strings.Join(args, " "), restrictions)
			if err != nil {
				return err
			}
			return printRecipe(cmd.OutOrStdout(), cmd.ErrOrStderr(), result.Recipe, result.CacheHit)
		},
	}
	cmd.Flags().StringArrayVarP(&restrictions, "restriction", "r", nil, "dietary restriction (repeatable, order matters)")
	cmd.Flags().StringVar(&serverURL, "server", defaultServerURL, "recipe service base URL")

	return cmd
}

func runServe(parent context.Context) error {
	container := buildContainer()
	if err := initLogging(container); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer observability.Sync()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return container.Invoke(func(server *http.Server, store domain.RecipeStore) error {
		logger := observability.FromContext(ctx)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		var serveErr error
		select {
		case serveErr = <-errCh:
		case <-ctx.Done():
			logger.Info("shutdown signal received")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
			defer cancel()
			serveErr = server.Shutdown(shutdownCtx)
		}

		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close recipe store", observability.Error(closeErr))
			serveErr = errors.Join(serveErr, closeErr)
		}

		return serveErr
	})
}

func runResolve(ctx context.Context, stdout, stderr io.Writer, query string, restrictions []string) error {
	container := buildContainer()
	if err := initLogging(container); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer observability.Sync()

	return container.Invoke(func(resolver *domain.RecipeResolver, store domain.RecipeStore) (err error) {
		defer func() {
			err = errors.Join(err, store.Close())
		}()

		result, err := resolver.Resolve(ctx, query, restrictions)
		if err != nil {
			return err
		}
		return printRecipe(stdout, stderr, result.Recipe, result.Hit)
	})
}

func printRecipe(stdout, stderr io.Writer, recipe *domain.Recipe, hit bool) error {
	status := "MISS"
	if hit {
		status = "HIT"
	}
	fmt.Fprintf(stderr, "cache: %s\n", status)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(recipe)
}
