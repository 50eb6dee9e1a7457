// Package profile adds opt-in runtime profiling to the rovo command.
//
// A CPU profile and an execution trace cover the whole command run; heap and
// goroutine snapshots are written when profiling stops. Every output is
// disabled until its path flag is set:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	if err := p.Start(); err != nil {
//		return err
//	}
//	defer p.Stop()
package profile
