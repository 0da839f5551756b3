package mimic

import (
	"bufio"
	"io"

	common "mimic_go/utils"
)

// WriteFasta writes recs as one header line and one sequence line each and
// returns the number of records written. Each record is formatted in full
// before it reaches w. No records is ErrEmptyResult.
func WriteFasta(w io.Writer, recs []OutputRecord) (int, error) {
	if len(recs) == 0 {
		return 0, ErrEmptyResult
	}
	bw := bufio.NewWriter(w)
	var line []byte
	for i, r := range recs {
		line = line[:0]
		line = append(line, '>')
		line = append(line, r.Header...)
		line = append(line, '\n')
		line = append(line, r.Seq...)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return i, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// WriteFastaFile writes recs to path atomically. An empty result leaves path
// untouched and returns ErrEmptyResult.
func WriteFastaFile(path string, recs []OutputRecord) error {
	if len(recs) == 0 {
		return ErrEmptyResult
	}
	return common.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := WriteFasta(w, recs)
		return err
	})
}
