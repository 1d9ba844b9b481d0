package commerce

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	TraceID   string `json:"traceId"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type lastChangedResponse struct {
	Timestamp string          `json:"timestamp"`
	TraceID   string          `json:"traceId"`
	Data      lastChangedData `json:"data"`
}

type lastChangedData struct {
	LastChangeStatuses []lastChangeStatus `json:"lastChangeStatuses"`
	Count              int                `json:"count"`
	More               *morePage          `json:"more"`
}

type morePage struct {
	MoreFrom     string `json:"moreFrom"`
	MoreSequence string `json:"moreSequence"`
}

type lastChangeStatus struct {
	ProductOrderID     string `json:"productOrderId"`
	OrderID            string `json:"orderId"`
	LastChangedType    string `json:"lastChangedType"`
	LastChangedDate    string `json:"lastChangedDate"`
	ProductOrderStatus string `json:"productOrderStatus"`
	PaymentDate        string `json:"paymentDate"`
}

type queryRequest struct {
	ProductOrderIDs []string `json:"productOrderIds"`
}

type queryResponse struct {
	Timestamp string             `json:"timestamp"`
	TraceID   string             `json:"traceId"`
	Data      []productOrderInfo `json:"data"`
}

type productOrderInfo struct {
	Order        orderInfo        `json:"order"`
	ProductOrder productOrderPart `json:"productOrder"`
}

type orderInfo struct {
	OrderID     string `json:"orderId"`
	OrderDate   string `json:"orderDate"`
	OrdererName string `json:"ordererName"`
	OrdererTel  string `json:"ordererTel"`
	PaymentDate string `json:"paymentDate"`
}

type productOrderPart struct {
	ProductOrderID     string `json:"productOrderId"`
	ProductName        string `json:"productName"`
	ProductOption      string `json:"productOption"`
	Quantity           int    `json:"quantity"`
	ProductOrderStatus string `json:"productOrderStatus"`
}
