package extraction

// ResultStore は企業ごとの創業者リストを集約する純粋なアキュムレータ
type ResultStore struct {
	founders FounderMap
}

// NewResultStore は新しいResultStoreを作成する
func NewResultStore() *ResultStore {
	return &ResultStore{
		founders: make(FounderMap),
	}
}

// Record は企業の創業者リストを登録する（既存エントリは上書き）
func (s *ResultStore) Record(company string, founders []string) {
	s.founders[company] = founders
}

// Snapshot は現在の集約結果のコピーを返す
func (s *ResultStore) Snapshot() FounderMap {
	snapshot := make(FounderMap, len(s.founders))
	for company, founders := range s.founders {
		copied := make([]string, len(founders))
		copy(copied, founders)
		snapshot[company] = copied
	}
	return snapshot
}
