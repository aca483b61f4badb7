// Package manager keeps a set of configuration files that live in one
// directory.
//
// Files are registered under a name, their base name within the
// directory. LoadAll and SaveAll process every file concurrently;
// operations on a single file are serialized, so a reload triggered by
// Watch never runs at the same time as a save of the same file.
//
//	m, err := manager.New("/etc/myapp")
//	if err != nil {
//		return err
//	}
//	srv, _ := m.NewFile("server.conf", merge.Closed, func(d *config.Declaration) {
//		d.AddScalar("server.port", "", 8080)
//	})
//	if err := m.LoadAll(ctx); err != nil {
//		return err
//	}
package manager
