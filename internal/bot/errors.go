package bot

import "errors"

var ErrSessionStore = errors.New("bot: session store error")
