// Package config ties a file on disk to a declared tree.
//
// # Usage
//
//	f := config.New("app.conf", merge.Closed, func(d *config.Declaration) {
//	    d.AddComment("", "application settings")
//	    d.AddScalar("server.port", "", 8080)
//	    d.AddList("server.hosts", "a.example.com")
//	})
//	if err := f.Load(); err != nil {
//	    // the declared defaults are still in place
//	}
//	port, _ := f.GetInt("server.port")
//
// Load writes the declared tree out when the file does not exist yet.
// Otherwise the file is parsed and reconciled into the tree with the
// file's merge policy, so values a person edited win over the defaults
// and, under the open policy, content the declaration does not know
// about is kept. Save writes the tree back with its comments, blank
// lines and order.
//
// Problems that do not stop the file from being used (lines that cannot
// be read, values of the wrong type) go to the file's diagnostic sink.
package config
