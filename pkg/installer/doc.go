// Package installer is the entry point of host package managers.
//
// An Installer is created once per host session. The host activates it with
// the root package of the project, then delivers one Event per installed,
// updated or removed package. For each event the installer reads the hook
// section of the package and runs the named actions in document order.
//
// All state lives on the Installer value: deactivating one installer has no
// effect on another.
package installer
