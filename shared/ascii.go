// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package shared

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	AccentColor = tcell.ColorOrange
	HotkeyColor = tcell.ColorLightSkyBlue

	WELCOME_MESSAGE = fmt.Sprintf("[orange:-:b]%s[-:-:-] %s", "tpinlock", "Keep it to yourself")
	LOGO_TEXT       = `
  _         _       _            _    
 | |_ _ __ (_)_ __ | | ___   ___| | __
 | __| '_ \| | '_ \| |/ _ \ / __| |/ /
 | |_| |_) | | | | | | (_) | (__|   < 
  \__| .__/|_|_| |_|_|\___/ \___|_|\_\
     |_|
`

	LOCK_IMAGE = `
       ██████       
     ███    ███     
    ███      ███    
    ██        ██    
   ██████████████   
  ███          ███  
  ███   ████   ███  
  ███   ████   ███  
  ███    ██    ███  
  ███          ███  
   ██████████████   
`

	UNLOCK_IMAGE = `
       ██████       
     ███    ███     
    ███      ███    
    ██              
   ██████████████   
  ███          ███  
  ███   ████   ███  
  ███   ████   ███  
  ███    ██    ███  
  ███          ███  
   ██████████████   
`
)
