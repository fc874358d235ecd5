// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hatchsite/hatch/internal/config"
	"github.com/hatchsite/hatch/internal/content"
)

var previewContentPath string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve a live preview that rebuilds when the content file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		var mu sync.RWMutex
		var current string

		rebuild := func() error {
			sc, err := content.LoadFile(previewContentPath)
			if err != nil {
				return err
			}
			res, err := runBuild(sc, logger)
			if err != nil {
				return err
			}
			mu.Lock()
			current = res.Document
			mu.Unlock()
			logger.Info("rebuilt preview",
				zap.String("vibe", res.VibeID),
				zap.Float64("chaos", res.Chaos))
			return nil
		}

		if err := rebuild(); err != nil {
			return err
		}

		if config.GetBool("preview.watch") {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()
			if err := watcher.Add(previewContentPath); err != nil {
				return fmt.Errorf("failed to watch content file: %w", err)
			}
			go func() {
				for {
					select {
					case ev, ok := <-watcher.Events:
						if !ok {
							return
						}
						if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
							continue
						}
						if err := rebuild(); err != nil {
							logger.Warn("rebuild failed", zap.Error(err))
						}
					case err, ok := <-watcher.Errors:
						if !ok {
							return
						}
						logger.Warn("watch error", zap.Error(err))
					}
				}
			}()
		}

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		r.GET("/", func(c *gin.Context) {
			mu.RLock()
			doc := current
			mu.RUnlock()
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
		})

		addr := fmt.Sprintf("%s:%d", config.GetString("preview.host"), config.GetInt("preview.port"))
		fmt.Printf("Preview at http://%s/\n", addr)
		return r.Run(addr)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewContentPath, "content", "c", "content.yaml", "content file (YAML or JSON)")
	rootCmd.AddCommand(previewCmd)
}
