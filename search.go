package chengyu

import "fmt"

// Search returns all idioms of corpus matching q, in corpus order.
//
// Records which cannot be evaluated are logged and skipped; they never abort
// the search. An empty query returns the whole corpus.
func Search(q *Query, corpus *Corpus) []string {
	recs := SearchRecords(q, corpus)
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Idiom
	}
	return out
}

// SearchRecords is like Search, but returns the matching records.
func SearchRecords(q *Query, corpus *Corpus) []IdiomRecord {
	if corpus.Len() == 0 {
		return []IdiomRecord{}
	}
	if q == nil {
		q = &Query{}
	}
	var matches []IdiomRecord
	if cand, ok := corpus.index.candidates(q); ok {
		tracer().Debugf("%s: %d candidates for %v", corpus.Identifier, len(cand), q)
		matches = make([]IdiomRecord, 0, len(cand))
		for _, n := range cand {
			if rec := &corpus.records[n]; evaluate(q, rec) {
				matches = append(matches, rec.clone())
			}
		}
		return matches
	}
	for n := range corpus.records {
		if rec := &corpus.records[n]; evaluate(q, rec) {
			matches = append(matches, rec.clone())
		}
	}
	if matches == nil {
		matches = []IdiomRecord{}
	}
	return matches
}

// evaluate matches one record and turns evaluation errors, including
// panics, into a rejection.
func evaluate(q *Query, rec *IdiomRecord) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("skipping record: %v", &EvaluationError{
				Idiom: rec.Idiom,
				Err:   fmt.Errorf("panic: %v", r),
			})
			ok = false
		}
	}()
	ok, err := Match(q, rec)
	if err != nil {
		tracer().Errorf("skipping record: %v", err)
		return false
	}
	return ok
}
