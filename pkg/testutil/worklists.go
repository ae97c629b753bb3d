package testutil

import "github.com/arthur-debert/dotmerge/pkg/types"

// ZshrcWorklist is a representative .zshrc worklist mixing marker
// fragments, exact fragments, a scalar field and a set field.
func ZshrcWorklist() []types.Operation {
	return []types.Operation{
		types.FieldOp(types.StructuredField{Name: "ZSH_THEME", Kind: types.ValueScalar, Value: "agnoster"}),
		types.FieldOp(types.StructuredField{Name: "plugins", Kind: types.ValueSet, Values: []string{"git", "zsh-autosuggestions", "zsh-syntax-highlighting"}}),
		types.FragmentOp(types.Fragment{
			Comment: "# NVM",
			Content: "export NVM_DIR=\"$HOME/.nvm\"\n[ -s \"$NVM_DIR/nvm.sh\" ] && \\. \"$NVM_DIR/nvm.sh\"",
			Marker:  "NVM_DIR",
		}),
		types.FragmentOp(types.Fragment{
			Comment: "# pyenv",
			Content: "export PYENV_ROOT=\"$HOME/.pyenv\"\ncommand -v pyenv >/dev/null && eval \"$(pyenv init -)\"",
			Marker:  "PYENV_ROOT",
		}),
		types.FragmentOp(types.Fragment{Comment: "# aliases", Content: "alias ll='ls -la'"}),
	}
}

// ZprofileWorklist is a representative .zprofile worklist
func ZprofileWorklist() []types.Operation {
	return []types.Operation{
		types.FragmentOp(types.Fragment{
			Comment: "# Homebrew",
			Content: "eval \"$(/opt/homebrew/bin/brew shellenv)\"",
			Marker:  "brew shellenv",
		}),
	}
}
