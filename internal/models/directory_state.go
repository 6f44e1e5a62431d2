package models

type DirectoryStatus string

const (
	DirectoryIdle    DirectoryStatus = "idle"
	DirectoryLoading DirectoryStatus = "loading"
	DirectoryLoaded  DirectoryStatus = "loaded"
	DirectoryFailed  DirectoryStatus = "failed"
)

// LoanDirectoryState is the view state of the loan directory. Records is only
// set when Loaded, Reason and Err only when Failed.
type LoanDirectoryState struct {
	Status  DirectoryStatus `json:"status"`
	Records []LoanAccount   `json:"records,omitempty"`
	Reason  string          `json:"reason,omitempty"`
	Err     error           `json:"-"`
}

func NewIdleDirectory() LoanDirectoryState {
	return LoanDirectoryState{Status: DirectoryIdle}
}

func NewLoadingDirectory() LoanDirectoryState {
	return LoanDirectoryState{Status: DirectoryLoading}
}

func NewLoadedDirectory(records []LoanAccount) LoanDirectoryState {
	if records == nil {
		records = []LoanAccount{}
	}
	return LoanDirectoryState{Status: DirectoryLoaded, Records: records}
}

func NewFailedDirectory(reason string, err error) LoanDirectoryState {
	return LoanDirectoryState{Status: DirectoryFailed, Reason: reason, Err: err}
}

// Clone returns a copy whose Records can be modified freely.
func (s LoanDirectoryState) Clone() LoanDirectoryState {
	if s.Records != nil {
		records := make([]LoanAccount, len(s.Records))
		copy(records, s.Records)
		s.Records = records
	}
	return s
}

// Find looks up a record by account number in a Loaded directory.
func (s LoanDirectoryState) Find(accountNumber string) (LoanAccount, bool) {
	for _, record := range s.Records {
		if record.AccountNumber == accountNumber {
			return record, true
		}
	}
	return LoanAccount{}, false
}
