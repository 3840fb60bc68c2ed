package gatepass

// ExtractionPrompt instructs a vision model to read a gate-pass image
const ExtractionPrompt = `You are a precise data extractor. Look at the provided document image and return JSON that matches this exact schema:
{
  "documentNo": string | null,
  "date": string | null,
  "items": [
    {
      "indNo": string | null,
      "materialNo": string | null,
      "materialDescription": string | null,
      "quantityFromRemarks": string | null
    }
  ]
}
Rules:
- Output MUST be valid JSON only, with no markdown, fences, or prose.
- If any value is missing or unreadable, set it to null.
- Dates must be formatted as YYYY-MM-DD when possible.
- Use these label synonyms when extracting:
  • documentNo: "Document No", "Doc No", "Challan No", "Invoice No"
  • date: "Date", "Challan Date", "Invoice Date"
  • indNo: "IND #", "IND No", "Indent No", "Requisition No"
  • materialNo: "Material No", "Item Code", "Part No", "SKU"
  • materialDescription: "Material Description", "Item Description", "Description"
  • quantityFromRemarks: Numeric quantity mentioned near "Remarks", "Remark", "Notes", or labeled "Qty"
- When multiple rows/items exist, include them all in the items array.
- Do not invent data; extract only what is present.`

// ExtractionInstruction accompanies the image in the user turn
const ExtractionInstruction = "Extract the fields as specified."

// NormalizationPrompt asks a text model to reshape raw OCR or model output
const NormalizationPrompt = `You are a data transformer. Convert the provided raw OCR/LLM output into a single JSON object with EXACTLY this schema:
{
  "documentNo": string|null,
  "date": string|null,          // Use YYYY-MM-DD when possible
  "items": [
    {
      "indNo": string|null,     // Map labels like "IND #", "IND No", "Indent No"
      "materialNo": string|null,
      "materialDescription": string|null,
      "quantityFromRemarks": string|null // A numeric-like string (e.g., "50", "08") if present
    }
  ]
}
Rules:
- Output MUST be pure JSON only (no markdown, no code fences, no comments).
- Normalize label variants (e.g., IND # -> indNo).
- If values are missing, set to null.
- Do not add extra top-level keys.
`
