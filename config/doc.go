// Package config holds the splash screen parameters and the backend settings.
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. Defaults (Default), matching the stock loading screen: ten status
//     labels, a 200ms tick and an 800ms settle delay.
//  2. User configuration (~/.config/launchpad/config.yaml), if present.
//  3. An explicit file passed with --config.
//
// The backend hands the splash section to the browser through the go-app
// environment (ToEnv), and the WebAssembly client reads it back with FromEnv.
package config
