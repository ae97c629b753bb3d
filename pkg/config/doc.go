// Package config loads the dotmerge configuration and worklist.
//
// Sources are layered, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file: --config PATH, else the first of config.toml,
//     config.yaml or config.yml in $XDG_CONFIG_HOME/dotmerge
//  3. DOTMERGE_* environment variables, lower-cased with "__" as the key
//     separator (DOTMERGE_PLATFORM__REQUIRE=linux,darwin)
//
// Maps merge key by key; lists replace. A user file that declares
// [[files]] therefore replaces the default worklist as a whole.
package config
