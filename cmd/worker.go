package cmd

import (
	"beanstalk/worker/syncer"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync proposals from the snapshot hub",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		w, err := syncer.New(
			provideConfig(),
			provideSnapshotService(),
			provideProposalStore(database),
			syncer.PropertyCheckpoints(providePropertyStore(database)),
		)
		if err != nil {
			log.WithError(err).Fatalln("syncer.New")
		}

		if daemon, _ := cmd.Flags().GetBool("daemon"); !daemon {
			if err := w.Sync(ctx); err != nil {
				log.WithError(err).Fatalln("sync")
			}

			return
		}

		_ = w.Start()
		log.Infoln("syncer started, interval", cfg.Sync.Interval)

		<-signal.WithContext(ctx).Done()
		_ = w.Stop()
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("daemon", false, "keep syncing on the configured interval")
}
