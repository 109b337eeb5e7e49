// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/c3tools/cachefix/internal/meta"
)

const bashCompletionScript = `# bash completion for cachefix
_cachefix()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "fix inspect completion --help --version" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
    fix)
        local opts="--dry-run -n --suffix-length -s --color --no-color -c"
        ;;
    inspect)
        local opts="--output -o"
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    *)
        local opts=""
        ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Complete the archive positional.
    COMPREPLY=( $(compgen -f -X '!*.zip' -- "$cur") $(compgen -d -- "$cur") )
    return 0
}

complete -F _cachefix cachefix
`

const zshCompletionScript = `#compdef cachefix

_cachefix() {
  local -a cmds
  cmds=(
    'fix:rename assets and rewrite their references'
    'inspect:show the export manifest and asset inventory'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cachefix commands' cmds
    return
  fi

  case $words[2] in
    fix)
      _arguments \
        '(-n --dry-run)'{-n,--dry-run}'[log planned renames only]' \
        '(-s --suffix-length)'{-s,--suffix-length}'[random suffix length]:length' \
        '(-c --color)'{-c,--color}'[colored log output]' \
        '--no-color[plain log output]' \
        '::archive:_files -g "*.zip"'
      ;;
    inspect)
      _arguments \
        '(-o --output)'{-o,--output}'[output format]:format:(text json)' \
        '::archive:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments '::archive:_files -g "*.zip"'
      ;;
  esac
}

compdef _cachefix cachefix
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print usage.
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: cachefix completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cachefix completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: CompletionCommandAction,
	}
}
