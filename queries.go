// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import "context"

// Predefined Pathway Tools query functions. Each wrapper is pure glue: a
// remote function name, its argument shape, and FnCall / FnCallList. Unlike
// Resolve, these return decoded data (mostly frame id lists) and never create
// frames; call them when the ids are all you need and no caching is wanted.

// AllPathways returns pathway instances of the given type. selector is "all"
// or "small-molecule"; base restricts the result to base pathways, excluding
// superpathways.
func (p *PGDB) AllPathways(ctx context.Context, selector string, base bool) ([]any, error) {
	return p.FnCallList(ctx, "all-pathways", []any{Keyword(selector), base}, nil)
}

// AllRxns returns the reactions of a particular category. typ is one of
// "all", "metab-pathways", "metab-smm", "metab-all", "enzyme", "transport",
// "small-molecule", "protein-small-molecule-reaction", "protein-reaction",
// "trna-reaction", "spontaneous" or "non-spontaneous".
func (p *PGDB) AllRxns(ctx context.Context, typ string) ([]any, error) {
	return p.FnCallList(ctx, "all-rxns", []any{Keyword(typ)}, nil)
}

// AllReactions is a synonym of AllRxns.
func (p *PGDB) AllReactions(ctx context.Context, typ string) ([]any, error) {
	return p.AllRxns(ctx, typ)
}

// AllSubstrates returns all unique substrates used in the given reactions.
// The result may contain plain strings: the left and right slots of a
// reaction can hold strings.
func (p *PGDB) AllSubstrates(ctx context.Context, rxns []any) ([]any, error) {
	return p.FnCallList(ctx, "all-substrates", []any{refList(rxns)}, nil)
}

// AllCofactors returns all cofactors used in this PGDB.
func (p *PGDB) AllCofactors(ctx context.Context) ([]any, error) {
	return p.FnCallList(ctx, "all-cofactors", nil, nil)
}

// AllModulators returns all direct regulators in this PGDB.
func (p *PGDB) AllModulators(ctx context.Context) ([]any, error) {
	return p.FnCallList(ctx, "all-modulators", nil, nil)
}

// AllSigmaFactors returns all RNA polymerase sigma factors.
func (p *PGDB) AllSigmaFactors(ctx context.Context) ([]any, error) {
	return p.FnCallList(ctx, "all-sigma-factors", nil, nil)
}

// AllOperons returns all operons, each as a list of overlapping
// transcription units.
func (p *PGDB) AllOperons(ctx context.Context) ([]any, error) {
	return p.FnCallList(ctx, "all-operons", nil, nil)
}

// AllTransporters returns all transport proteins.
func (p *PGDB) AllTransporters(ctx context.Context) ([]any, error) {
	return p.FnCallList(ctx, "all-transporters", nil, nil)
}

// AllTransportedChemicals returns all chemicals moved by transport reactions.
// fromCompartment and toCompartment are optional cellular-component frame
// designators; pass nil to leave them to the server default. primaryOnly
// filters out common transport compounds such as protons.
func (p *PGDB) AllTransportedChemicals(ctx context.Context, fromCompartment, toCompartment any, primaryOnly bool) ([]any, error) {
	return p.FnCallList(ctx, "all-transported-chemicals", nil, Kwargs{
		KV("from-compartment", fromCompartment),
		KV("to-compartment", toCompartment),
		KV("primary-only?", primaryOnly),
	})
}

// AllProteinComplexes returns protein complexes. filter is "all", "hetero"
// or "homo".
func (p *PGDB) AllProteinComplexes(ctx context.Context, filter string) ([]any, error) {
	return p.FnCallList(ctx, "all-protein-complexes", nil, Kwargs{
		KV("filter", Keyword(filter)),
	})
}

// AllTranscriptionFactors returns all transcription factors. When
// allowModifiedForms is false only unmodified protein forms are returned.
func (p *PGDB) AllTranscriptionFactors(ctx context.Context, allowModifiedForms bool) ([]any, error) {
	return p.FnCallList(ctx, "all-transcription-factors", nil, Kwargs{
		KV("allow-modified-forms?", allowModifiedForms),
	})
}

// AllEnzymes returns enzymes of the given type, or the server default when
// typ is nil.
func (p *PGDB) AllEnzymes(ctx context.Context, typ any) ([]any, error) {
	return p.FnCallList(ctx, "all-enzymes", nil, Kwargs{KV("type", typ)})
}

// RxnsWIsozymes returns reactions that have isozymes. rxns defaults to all
// enzymatic reactions when nil.
func (p *PGDB) RxnsWIsozymes(ctx context.Context, rxns []any) ([]any, error) {
	return p.FnCallList(ctx, "rxns-w-isozymes", nil, Kwargs{KV("rxns", refListOrNil(rxns))})
}

// RxnsCatalyzedByComplex returns reactions catalyzed by a protein complex.
// rxns defaults to all enzymatic reactions when nil.
func (p *PGDB) RxnsCatalyzedByComplex(ctx context.Context, rxns []any) ([]any, error) {
	return p.FnCallList(ctx, "rxns-catalyzed-by-complex", nil, Kwargs{KV("rxns", refListOrNil(rxns))})
}

// GenesOfReaction returns the genes of the enzymes catalyzing rxn.
func (p *PGDB) GenesOfReaction(ctx context.Context, rxn any) ([]any, error) {
	return p.FnCallList(ctx, "genes-of-reaction", []any{frameRef(rxn)}, nil)
}

// SubstratesOfReaction returns the substrates of rxn, which may include
// plain strings.
func (p *PGDB) SubstratesOfReaction(ctx context.Context, rxn any) ([]any, error) {
	return p.FnCallList(ctx, "substrates-of-reaction", []any{frameRef(rxn)}, nil)
}

// EnzymesOfReaction returns the enzymes catalyzing rxn.
func (p *PGDB) EnzymesOfReaction(ctx context.Context, rxn any) ([]any, error) {
	return p.FnCallList(ctx, "enzymes-of-reaction", []any{frameRef(rxn)}, nil)
}

// ReactionsOfCompound returns the reactions in which compound appears as a
// substrate.
func (p *PGDB) ReactionsOfCompound(ctx context.Context, compound any) ([]any, error) {
	return p.FnCallList(ctx, "reactions-of-compound", []any{frameRef(compound)}, nil)
}

// GenesOfPathway returns the genes coding for enzymes of pathway.
func (p *PGDB) GenesOfPathway(ctx context.Context, pathway any) ([]any, error) {
	return p.FnCallList(ctx, "genes-of-pathway", []any{frameRef(pathway)}, nil)
}

// PathwaysOfGene returns the pathways containing reactions catalyzed by the
// product of gene.
func (p *PGDB) PathwaysOfGene(ctx context.Context, gene any) ([]any, error) {
	return p.FnCallList(ctx, "pathways-of-gene", []any{frameRef(gene)}, nil)
}

// RunFBA runs flux balance analysis with the named FBA input file on the
// server machine. The input file may itself select an organism and override
// this PGDB.
func (p *PGDB) RunFBA(ctx context.Context, fileName string) (any, error) {
	return p.FnCall(ctx, "python-run-fba", []any{fileName}, nil)
}

// refList prepares a list of frame designators: strings become symbols so the
// server resolves them as frame ids inside the quoted list.
func refList(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = frameRef(v)
	}
	return out
}

// refListOrNil is refList, but keeps nil as nil so a keyword argument can be
// omitted entirely.
func refListOrNil(vals []any) any {
	if vals == nil {
		return nil
	}
	return refList(vals)
}
