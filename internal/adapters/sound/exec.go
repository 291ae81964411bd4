package sound

import "os/exec"

var command = exec.Command
