// Package cli implements the stackyter command line.
//
// There is one root command, "stackyter", plus "stackyter version". The root
// command either lists the configuration file (--showconfig) or starts a
// session:
//
//  1. Locate and load the configuration file, pick a profile
//  2. Merge defaults, the profile, and explicitly given flags
//  3. Build the ssh script and print it (--dry-run) or run it
//
// Option flags share their names with configuration keys. Only flags the
// user actually passed override a profile; pflag's changed state decides
// that, not the flag's value.
//
// Everything the commands touch outside the process (filesystem, environment,
// output streams, the random port source, the session runner) is held in an
// environment so tests can replace it.
package cli
