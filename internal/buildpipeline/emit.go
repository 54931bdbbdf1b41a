package buildpipeline

import (
	"slices"
	"sort"

	"cinder/internal/asm"
	"cinder/internal/symbols"
)

// BuildDataBlock renders the declaration segment of a module from the
// final symbol directory state. The export section lists every Public
// symbol in directory enumeration order, ahead of all declarations; the
// declaration section lists every symbol exactly once in the contractual
// order produced by sortDeclarations.
func BuildDataBlock(dir *symbols.Directory) string {
	b := asm.NewBuilder()
	b.Raw(asm.DataStart)
	b.Blank()
	b.Indent()

	all := dir.AllUniqueChildSymbols()
	for _, def := range all {
		if def.Is(symbols.FlagPublic) {
			b.Text(asm.Export(def.UniqueName))
		}
	}
	b.Blank()

	for _, def := range sortDeclarations(all) {
		b.Text(asm.Decl(def.UniqueName, def.TypeName, def.InitialValue()))
	}

	b.Dedent()
	b.Blank()
	b.Raw(asm.DataEnd)
	return b.String()
}

// AssembleModule concatenates the data block and the lowered code block
// with a blank separator line. A nil or empty code builder yields a
// module with an empty code block.
func AssembleModule(dir *symbols.Directory, code *asm.Builder) string {
	out := BuildDataBlock(dir) + "\n"
	if code != nil {
		out += code.String()
	}
	return out
}

// sortDeclarations orders the declaration section. The ordering is an
// output-compatibility contract with the module loader and must be
// reproduced bit-for-bit: a stable ascending sort on the packed flag key,
// ties broken by descending type name then descending unique name, and
// the entire sequence reversed at the end. Do not simplify.
func sortDeclarations(defs []*symbols.Definition) []*symbols.Definition {
	out := slices.Clone(defs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ka, kb := declFlagKey(a), declFlagKey(b)
		if ka != kb {
			return ka < kb
		}
		if a.TypeName != b.TypeName {
			return a.TypeName > b.TypeName
		}
		return a.UniqueName > b.UniqueName
	})
	slices.Reverse(out)
	return out
}

// declFlagKey packs the grouping flags into one comparable integer, most
// significant first: Public, Private, This, not-Internal, Constant.
func declFlagKey(d *symbols.Definition) int {
	key := 0
	for _, set := range []bool{
		d.Is(symbols.FlagPublic),
		d.Is(symbols.FlagPrivate),
		d.Is(symbols.FlagThis),
		!d.Is(symbols.FlagInternal),
		d.Is(symbols.FlagConstant),
	} {
		key <<= 1
		if set {
			key |= 1
		}
	}
	return key
}
