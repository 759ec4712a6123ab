// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package utils

var (
	Version string = ".dev"
)

const (
	ArtReset  = "\033[0m"
	ArtOrange = "\033[38;2;177;128;10m"
	ArtBright = "\033[1m"
	ArtText   = `
  _         _       _            _    
 | |_ _ __ (_)_ __ | | ___   ___| | __
 | __| '_ \| | '_ \| |/ _ \ / __| |/ /
 | |_| |_) | | | | | | (_) | (__|   < 
  \__| .__/|_|_| |_|_|\___/ \___|_|\_\
     |_|
`
)
