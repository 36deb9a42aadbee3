// Package libreoffice installs and removes the speller extension for
// LibreOffice through its unopkg package manager.
//
// Ownership boundary:
// - unopkg discovery from the UNO install path
// - extension package copy into the install directory
// - unopkg add/remove subprocess calls
package libreoffice
